/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/poiseuille/OrrSommerfeld"
)

// ElementCmd represents the element command
var ElementCmd = newElementCmd()

func newElementCmd() (c *cobra.Command) {
	c = &cobra.Command{
		Use:   "element",
		Short: "Compute the 4x4 Orr-Sommerfeld element matrix of one element",
		Long: `
Integrates the weak form of the Orr-Sommerfeld operator against the cubic
Hermite basis over element k and prints the complex element matrix,

poiseuille element -N 1 -k 0 --alpha 1 --Re 1000 --basis canonical`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				ip *inputParameters
				A  OrrSommerfeld.ElementMatrix
			)
			if ip, err = loadInputParameters(cmd); err != nil {
				return
			}
			k, _ := cmd.Flags().GetInt("k")
			h := elementWidth(cmd, ip.Elements)
			as, err := newAssembler(ip)
			if err != nil {
				return
			}
			var (
				ed = OrrSommerfeld.ElementDescriptor{N: ip.Elements, H: h, K: k}
				sp = OrrSommerfeld.SpectralParams{Alpha: ip.Alpha, Re: ip.Re}
			)
			if err = validateInputs(ed, sp); err != nil {
				return
			}
			printHeader(cmd, ip, h)
			logger.Debug("assembling element", zap.Int("k", k), zap.Int("N", ip.Elements))
			if A, err = as.Assemble(ed, sp); err != nil {
				return
			}
			ymin, ymax := ed.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "A[%d], y in [%g, %g] =\n%v", k, ymin, ymax, A)
			return
		},
	}
	addInputFlags(c)
	c.Flags().IntP("k", "k", 0, "Zero based element index")
	return
}

func init() {
	rootCmd.AddCommand(ElementCmd)
}
