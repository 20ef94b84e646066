package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/benvon/gtm-copilot/internal/config"
	"github.com/benvon/gtm-copilot/internal/middleware"
	"github.com/spf13/cobra"
)

// NewCorsCmd creates the cors command with list and check subcommands.
func NewCorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cors",
		Short: "Inspect the CORS policy",
		Long:  "Show the CORS policy derived from ALLOWED_ORIGINS, or probe a running server with a preflight request.",
	}
	cmd.AddCommand(newCorsListCmd())
	cmd.AddCommand(newCorsCheckCmd())
	return cmd
}

func newCorsListCmd() *cobra.Command {
	var origins string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective CORS policy",
		Long:  "Print the allow-list and policy the server would apply. Uses --origins when given, otherwise the environment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			allowed := cfg.AllowedOrigins
			if cmd.Flags().Changed("origins") {
				allowed = config.ParseAllowedOrigins(origins)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "CORS policy:")
			fmt.Fprintln(out, "  Allowed origins:")
			for _, o := range allowed {
				fmt.Fprintf(out, "    - %s\n", o)
			}
			fmt.Fprintln(out, "  Allow credentials: true")
			fmt.Fprintf(out, "  Allowed methods: %s\n", strings.Join(middleware.AllMethods, ", "))
			fmt.Fprintln(out, "  Allowed headers: *")
			if cfg.CORSMaxAge > 0 {
				fmt.Fprintf(out, "  Max-Age: %d\n", cfg.CORSMaxAge)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&origins, "origins", "", "Comma-separated origins to evaluate instead of ALLOWED_ORIGINS")
	return cmd
}

func newCorsCheckCmd() *cobra.Command {
	var baseURL, origin, method, path string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Send a CORS preflight to a running server",
		Long:  "Send an OPTIONS preflight from --origin and report whether the server's policy admits it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			origin = strings.TrimSpace(origin)
			if origin == "" {
				return fmt.Errorf("--origin is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			allowed, err := preflight(ctx, strings.TrimRight(baseURL, "/")+path, origin, strings.ToUpper(method))
			if err != nil {
				return err
			}
			if !allowed {
				return fmt.Errorf("origin %s is not allowed by %s", origin, baseURL)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Origin %s is allowed for %s %s\n", origin, strings.ToUpper(method), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the server")
	cmd.Flags().StringVar(&origin, "origin", "", "Origin to test (required)")
	cmd.Flags().StringVar(&method, "method", http.MethodGet, "Method to request in the preflight")
	cmd.Flags().StringVar(&path, "path", "/health", "Path to send the preflight to")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	return cmd
}

// preflight reports whether target echoes origin in Access-Control-Allow-Origin
func preflight(ctx context.Context, target, origin, method string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, target, nil)
	if err != nil {
		return false, fmt.Errorf("build preflight request: %w", err)
	}
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", method)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("send preflight request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.Header.Get("Access-Control-Allow-Origin") == origin, nil
}
