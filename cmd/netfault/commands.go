package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/synthara-eda/netfault/pkg/argcheck"
	"github.com/synthara-eda/netfault/pkg/celllib"
	"github.com/synthara-eda/netfault/pkg/logging"
	"github.com/synthara-eda/netfault/pkg/metrics"
	"github.com/synthara-eda/netfault/pkg/netlist"
)

func loadGraph(path string) (*netlist.Snapshot, *netlist.DiGraph, error) {
	snap, err := netlist.LoadSnapshot(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := snap.Graph()
	if err != nil {
		return nil, nil, err
	}
	return snap, g, nil
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph.yaml>",
		Short: "Report the gate-type population of a netlist graph",
		Args:  argcheck.ExistingFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			reporter := netlist.NewReporter(log, flagWidth)
			return reporter.LogGateStats(g)
		},
	}
}

func newRegistersCommand() *cobra.Command {
	var cellFile string

	cmd := &cobra.Command{
		Use:   "registers <graph.yaml>",
		Short: "List the register cells of a netlist graph",
		Args:  argcheck.ExistingFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := argcheck.FileExists(cellFile); err != nil {
				return err
			}
			lib, err := celllib.Load(cellFile)
			if err != nil {
				return err
			}
			_, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			reporter := netlist.NewReporter(log, flagWidth)
			registers, err := reporter.Registers(g, lib)
			if err != nil {
				return err
			}
			for _, r := range registers {
				log.Info(fmt.Sprintf("%s (%s)", r.Name, r.Type))
			}
			log.Info(reporter.Rule())
			log.Info("registers found", logging.Count(len(registers)))
			return nil
		},
	}
	cmd.Flags().StringVar(&cellFile, "cells", "", "cell library file (required)")
	cmd.MarkFlagRequired("cells")
	return cmd
}

func newPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports <graph.yaml>",
		Short: "Print the input and output ports of a module snapshot",
		Args:  argcheck.ExistingFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, _, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			ports, err := snap.PortList()
			if err != nil {
				return err
			}
			netlist.NewReporter(log, flagWidth).LogPorts(ports)
			return nil
		},
	}
}

func newRenameCommand() *cobra.Command {
	var (
		suffix       string
		ignoreInputs bool
		outFile      string
	)

	cmd := &cobra.Command{
		Use:   "rename <graph.yaml>",
		Short: "Append a suffix to every node of a graph snapshot",
		Args:  argcheck.ExistingFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := argcheck.Creatable(outFile)
			if err != nil {
				return err
			}
			snap, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			if _, err := netlist.RenameNodes(g, suffix, ignoreInputs); err != nil {
				return err
			}
			log.Info("graph renamed",
				logging.Module(snap.Module),
				logging.Suffix(suffix),
				logging.Bool("ignore_inputs", ignoreInputs),
				logging.Count(g.Len()))

			ports, err := snap.PortList()
			if err != nil {
				return err
			}
			renamed, err := netlist.TakeSnapshot(snap.Module, g, ports)
			if err != nil {
				return err
			}
			return renamed.Save(out)
		},
	}
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix appended to node names (required)")
	cmd.Flags().BoolVar(&ignoreInputs, "ignore-inputs", false, "keep primary input nodes unchanged")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output snapshot file (required)")
	cmd.MarkFlagRequired("suffix")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newServeCommand() *cobra.Command {
	var (
		cellFile string
		listen   string
	)

	cmd := &cobra.Command{
		Use:   "serve <graph.yaml>",
		Short: "Expose graph population metrics over HTTP",
		Args:  argcheck.ExistingFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := argcheck.FileExists(cellFile); err != nil {
				return err
			}
			lib, err := celllib.Load(cellFile)
			if err != nil {
				return err
			}
			_, g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			registry := metrics.NewRegistry()
			reporter := netlist.NewReporter(log, flagWidth)
			if err := reporter.Observe(g, lib, registry); err != nil {
				return err
			}
			registry.RecordReport("serve")

			mux := http.NewServeMux()
			mux.Handle("/metrics", registry.Handler())
			log.Info("serving metrics", logging.String("addr", listen))
			return http.ListenAndServe(listen, mux)
		},
	}
	cmd.Flags().StringVar(&cellFile, "cells", "", "cell library file (required)")
	cmd.Flags().StringVar(&listen, "listen", ":9109", "listen address for the metrics endpoint")
	cmd.MarkFlagRequired("cells")
	return cmd
}
