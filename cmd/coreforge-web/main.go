// Command coreforge-web runs the ebiten frontend on its own. Built with
// GOOS=js GOARCH=wasm it serves as the browser build of the page.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/web"
)

func main() {
	var (
		configFile string
		preset     string
	)

	rootCmd := &cobra.Command{
		Use:   "coreforge-web",
		Short: "portfolio page in an ebiten window or browser canvas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					log.Printf("unknown preset %q, using defaults", preset)
					cfg = config.DefaultConfig()
				}
			}
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			client, err := contact.NewClient(cfg.Contact.Service(), nil)
			if err != nil {
				return err
			}
			form := contact.NewForm(cfg.Contact.To, cfg.Contact.Owner, client, contact.SystemOpener{})
			return web.Run(cfg, form)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "particle preset")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
