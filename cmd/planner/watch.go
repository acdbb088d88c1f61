package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/logging"
	watchpkg "github.com/carloacu/ordered-goals-planner-sub001/internal/watch"
)

var watchDir string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory's domain.pddl/problem.pddl and replan on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchDir == "" {
			return fmt.Errorf("--dp DIR is required")
		}
		return runWatch(cmd.Context(), watchDir)
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dp", "", "directory containing domain.pddl and problem.pddl")
}

func runWatch(parent context.Context, dir string) error {
	log := logging.Get(logging.CategoryWatch)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	domainPath := dir + "/domain.pddl"
	problemPath := dir + "/problem.pddl"

	replan := func() {
		log.Infof("change detected, replanning %s", dir)
		if err := runPlan(domainPath, problemPath, outputPath); err != nil {
			log.Warnf("replan failed: %v", err)
		}
	}

	replan()

	w, err := watchpkg.New(dir, cfg.GetDebounce(), replan)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	<-ctx.Done()
	w.Stop()
	return nil
}
