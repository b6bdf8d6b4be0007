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
	"github.com/spf13/viper"

	"github.com/notargets/poiseuille/InputParameters"
	"github.com/notargets/poiseuille/OrrSommerfeld"
)

type inputParameters = InputParameters.InputParameters

// addInputFlags registers the discretization and quadrature flags shared by
// the element and assemble commands
func addInputFlags(cmd *cobra.Command) {
	def := InputParameters.NewInputParameters()
	cmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- Elements\n\t- Alpha, Re\n\t- Basis")
	cmd.Flags().IntP("elements", "N", def.Elements, "Number of elements")
	cmd.Flags().Float64("width", 0, "Element width h, defaults to 1/N covering [0,1]")
	cmd.Flags().Float64P("alpha", "a", def.Alpha, "Streamwise wavenumber")
	cmd.Flags().Float64("Re", def.Re, "Reynolds number")
	cmd.Flags().StringP("basis", "b", def.Basis, "Hermite basis convention: canonical or element-local")
	cmd.Flags().String("rule", def.QuadratureRule, "Quadrature panel rule: legendre or golub-welsch")
	cmd.Flags().Int("order", def.QuadratureOrder, "Coarse rule points per quadrature panel, the fine rule doubles it")
	cmd.Flags().Float64("absTol", def.AbsTol, "Absolute quadrature tolerance")
	cmd.Flags().Float64("relTol", def.RelTol, "Relative quadrature tolerance")
	cmd.Flags().Int("maxSubdivisions", def.MaxSubdivisions, "Quadrature subdivision limit")
	cmd.Flags().IntP("parallel", "p", def.ParallelDegree, "Degree of parallelism")
}

// loadInputParameters resolves the inputs in increasing precedence: defaults,
// config file and POISEUILLE_* environment, input file, command line flags
func loadInputParameters(cmd *cobra.Command) (ip *inputParameters, err error) {
	ip = InputParameters.NewInputParameters()
	if viper.IsSet("elements") {
		ip.Elements = viper.GetInt("elements")
	}
	if viper.IsSet("alpha") {
		ip.Alpha = viper.GetFloat64("alpha")
	}
	if viper.IsSet("re") {
		ip.Re = viper.GetFloat64("re")
	}
	if viper.IsSet("basis") {
		ip.Basis = viper.GetString("basis")
	}
	if viper.IsSet("parallel") {
		ip.ParallelDegree = viper.GetInt("parallel")
	}
	if fileName, _ := cmd.Flags().GetString("inputFile"); fileName != "" {
		if err = ip.ReadFile(fileName); err != nil {
			return
		}
	}
	flags := cmd.Flags()
	if flags.Changed("elements") {
		ip.Elements, _ = flags.GetInt("elements")
	}
	if flags.Changed("alpha") {
		ip.Alpha, _ = flags.GetFloat64("alpha")
	}
	if flags.Changed("Re") {
		ip.Re, _ = flags.GetFloat64("Re")
	}
	if flags.Changed("basis") {
		ip.Basis, _ = flags.GetString("basis")
	}
	if flags.Changed("rule") {
		ip.QuadratureRule, _ = flags.GetString("rule")
	}
	if flags.Changed("order") {
		ip.QuadratureOrder, _ = flags.GetInt("order")
	}
	if flags.Changed("absTol") {
		ip.AbsTol, _ = flags.GetFloat64("absTol")
	}
	if flags.Changed("relTol") {
		ip.RelTol, _ = flags.GetFloat64("relTol")
	}
	if flags.Changed("maxSubdivisions") {
		ip.MaxSubdivisions, _ = flags.GetInt("maxSubdivisions")
	}
	if flags.Changed("parallel") {
		ip.ParallelDegree, _ = flags.GetInt("parallel")
	}
	return
}

func elementWidth(cmd *cobra.Command, N int) (h float64) {
	if h, _ = cmd.Flags().GetFloat64("width"); h == 0 && N > 0 {
		h = 1. / float64(N)
	}
	return
}

func newAssembler(ip *inputParameters) (as *OrrSommerfeld.Assembler, err error) {
	conv, err := ip.Convention()
	if err != nil {
		return
	}
	in, err := ip.Integrator()
	if err != nil {
		return
	}
	as = OrrSommerfeld.NewAssembler(conv)
	as.Integrator = in
	as.ParallelDegree = ip.ParallelDegree
	as.Logger = logger
	return
}

// validateInputs rejects a bad run before any output is written
func validateInputs(ed OrrSommerfeld.ElementDescriptor, sp OrrSommerfeld.SpectralParams) (err error) {
	if err = ed.Validate(); err != nil {
		return
	}
	return sp.Validate()
}

func printHeader(cmd *cobra.Command, ip *inputParameters, h float64) {
	w := cmd.OutOrStdout()
	ip.Print(w)
	fmt.Fprintf(w, "%8.5f\t\t= Element Width\n", h)
}
