package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/loader"
	"github.com/knapsack-lab/subknap/objective"
	"github.com/knapsack-lab/subknap/search"
)

type cliOptions struct {
	dataDir   string
	timeLimit time.Duration
	asJSON    bool
	verbose   bool
}

type jsonResult struct {
	Value    float64 `json:"value"`
	Seconds  float64 `json:"seconds"`
	Nodes    int     `json:"nodes"`
	TimedOut bool    `json:"timedOut"`
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "subknap <capacity> <objective 0-2> <solver 0-8>",
		Short: "Exact branch-and-bound solver for the submodular knapsack problem",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.dataDir, "data-dir", ".", "directory to read fixture JSON from")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", time.Hour, "wall-clock search budget")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the result as a JSON object")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "log progress to stderr")

	return cmd
}

func run(args []string, opts *cliOptions) error {
	log := logrus.New()
	if !opts.verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	capacity, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid capacity %q: %w", args[0], err)
	}
	objSel, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid objective selector %q: %w", args[1], err)
	}
	solverSel, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid solver selector %q: %w", args[2], err)
	}
	if objSel < 0 || objSel > 2 {
		return fmt.Errorf("objective selector %d out of range [0,2]", objSel)
	}
	if solverSel < 0 || solverSel > 8 {
		return fmt.Errorf("solver selector %d out of range [0,8]", solverSel)
	}

	log.WithFields(logrus.Fields{"objective": objSel, "solver": search.Variant(solverSel), "capacity": capacity}).Info("starting run")

	loadStart := time.Now()
	weights, obj, err := loadObjective(opts.dataDir, objSel)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(loadStart)).Info("load complete")

	store, err := item.NewStore(weights, obj.Value)
	if err != nil {
		return fmt.Errorf("building item store: %w", err)
	}

	solver := search.NewSolver(search.Variant(solverSel), store, obj.Value)

	deadline := time.Now().Add(opts.timeLimit)
	searchStart := time.Now()
	result, err := solver.Solve(store.IndexSet(), capacity, deadline)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}
	elapsed := time.Since(searchStart)

	log.WithFields(logrus.Fields{"nodes": result.Nodes, "timedOut": result.TimedOut}).Info("run complete")

	if opts.asJSON {
		return json.NewEncoder(os.Stdout).Encode(jsonResult{
			Value:    result.Value,
			Seconds:  elapsed.Seconds(),
			Nodes:    result.Nodes,
			TimedOut: result.TimedOut,
		})
	}

	fmt.Printf("optimal solution value: %v running time: %v considered nodes: %d\n", result.Value, elapsed.Seconds(), result.Nodes)
	return nil
}

func loadObjective(dataDir string, objSel int) ([]int, objective.Objective, error) {
	switch objSel {
	case 0:
		weights, obj, err := loader.LoadCOV(dataDir)
		return weights, obj, err
	case 1:
		weights, obj, err := loader.LoadLOC(dataDir)
		return weights, obj, err
	case 2:
		weights, obj, err := loader.LoadINF(dataDir)
		return weights, obj, err
	default:
		return nil, nil, fmt.Errorf("objective selector %d out of range [0,2]", objSel)
	}
}
