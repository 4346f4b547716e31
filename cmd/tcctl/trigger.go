package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teamcity-notifier/config"
	"teamcity-notifier/internal/model"
	"teamcity-notifier/internal/trigger"
	triggerUC "teamcity-notifier/internal/trigger/usecase"
	"teamcity-notifier/pkg/log"
	"teamcity-notifier/pkg/teamcity"
)

func newTriggerCmd() *cobra.Command {
	var requester string

	cmd := &cobra.Command{
		Use:   "trigger <target>",
		Short: "Queue a build for a configured target",
		Long: `Queues a TeamCity build for one of the trigger targets in config.yaml,
using the same cooldown and parameters as the Discord /build command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			tc, err := teamcity.New(teamcity.Config{
				BaseURL: cfg.TeamCity.BaseURL,
				Token:   cfg.TeamCity.Token,
				Timeout: cfg.TeamCity.Timeout,
			})
			if err != nil {
				return err
			}

			targets := make([]trigger.Target, 0, len(cfg.Trigger.Targets))
			for _, t := range cfg.Trigger.Targets {
				targets = append(targets, trigger.Target{
					Name:        t.Name,
					Label:       t.Label,
					BuildTypeID: t.BuildTypeID,
					Params:      t.Params,
				})
			}

			uc, err := triggerUC.New(log.NewNop(), tc, targets, cfg.Trigger.CooldownPerMin)
			if err != nil {
				return err
			}

			sc := model.Scope{Username: requester}
			out, err := uc.Trigger(cmd.Context(), sc, trigger.TriggerInput{Target: args[0]})
			fmt.Fprintln(cmd.OutOrStdout(), renderCard(trigger.ResultCard(args[0], out, err)))
			if err != nil {
				return fmt.Errorf("build was not queued: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&requester, "as", defaultRequester(), "name reported to TeamCity as the requester")
	return cmd
}

func defaultRequester() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "tcctl"
}
