package cmd

import (
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, ledger source and conversion rates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:    configPath,
		StoreSource:   r.svc.Source,
		ApplyFallback: r.svc.Config.Defaults.ApplyFallback,
		Precision:     r.svc.Config.Defaults.Precision,
		LogLevel:      r.svc.Config.Log.Level,
	}

	return views.RenderSystemInfo(items)
}
