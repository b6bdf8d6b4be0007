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

// AssembleCmd represents the assemble command
var AssembleCmd = newAssembleCmd()

func newAssembleCmd() (c *cobra.Command) {
	c = &cobra.Command{
		Use:   "assemble",
		Short: "Assemble the element matrices of all N elements into one sparse system",
		Long: `
Computes every element matrix and scatters them into the global complex
system over the value and slope unknowns of the N+1 nodes. No boundary
conditions are applied,

poiseuille assemble -N 20 --alpha 1.02 --Re 5772 -p 4`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				ip *inputParameters
			)
			if ip, err = loadInputParameters(cmd); err != nil {
				return
			}
			h := elementWidth(cmd, ip.Elements)
			as, err := newAssembler(ip)
			if err != nil {
				return
			}
			sp := OrrSommerfeld.SpectralParams{Alpha: ip.Alpha, Re: ip.Re}
			if err = validateInputs(OrrSommerfeld.ElementDescriptor{N: ip.Elements, H: h}, sp); err != nil {
				return
			}
			printHeader(cmd, ip, h)
			G, err := as.AssembleGlobal(ip.Elements, h, sp)
			if err != nil {
				return
			}
			nr, nc := G.Dims()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "[%d x %d]\t\t\t= Global System\n", nr, nc)
			fmt.Fprintf(w, "[%d]\t\t\t\t= Non Zeros\n", G.NNZ())
			logger.Debug("assembled", zap.Int("dof", nr), zap.Int("nnz", G.NNZ()))
			if dense, _ := cmd.Flags().GetBool("dense"); dense {
				C := G.ToCDense()
				for i := 0; i < nr; i++ {
					for j := 0; j < nc; j++ {
						v := C.At(i, j)
						fmt.Fprintf(w, "%12.5g %+12.5gi ", real(v), imag(v))
					}
					fmt.Fprintln(w)
				}
			}
			return
		},
	}
	addInputFlags(c)
	c.Flags().Bool("dense", false, "print the assembled matrix in dense form, for small N")
	return
}

func init() {
	rootCmd.AddCommand(AssembleCmd)
}
