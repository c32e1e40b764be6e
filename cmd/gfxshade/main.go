// Copyright 2026 The gfx Authors. All rights reserved.

// Gfxshade compiles WGSL shaders to SPIR-V binaries and
// inspects the interface of shader binaries.
//
// Usage:
//
//	gfxshade build [-o out.spv] shader.wgsl
//	gfxshade inputs shader.spv
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Bastacyclop/gfx/shade"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gfxshade",
		Short:         "compile and inspect shaders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("gfxshade")
	viper.AutomaticEnv()
	cobra.OnInitialize(func() {
		if viper.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
	root.AddCommand(buildCmd(), inputsCmd())
	return root
}

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] <shader.wgsl>",
		Short: "compile WGSL source to a SPIR-V binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			art, err := shade.Compile(string(src))
			if err != nil {
				return err
			}
			out := viper.GetString("output")
			if out == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				out = base + ".spv"
			}
			if err := os.WriteFile(out, art.Code, 0o644); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"output":  out,
				"size":    len(art.Code),
				"entries": len(art.Entries),
			}).Debug("shader compiled")
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "output file (default: input with .spv extension)")
	viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func inputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inputs <shader.spv|shader.wgsl>",
		Short: "print the entry points and vertex inputs of a shader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var entries []shade.EntryPoint
			if filepath.Ext(args[0]) == ".wgsl" {
				art, err := shade.Compile(string(data))
				if err != nil {
					return err
				}
				entries = art.Entries
			} else {
				if entries, err = shade.Reflect(data); err != nil {
					return err
				}
			}
			for _, e := range entries {
				fmt.Printf("%s (%s)\n", e.Name, e.Stage)
				inputs := append([]shade.Input(nil), e.Inputs...)
				sort.Slice(inputs, func(i, j int) bool {
					return inputs[i].Location < inputs[j].Location
				})
				for _, in := range inputs {
					name := in.Name
					if name == "" {
						name = "<unnamed>"
					}
					fmt.Printf("  @location(%d) %s\n", in.Location, name)
				}
			}
			return nil
		},
	}
}
