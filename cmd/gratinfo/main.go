// Command gratinfo prints the wavelength coverage of a grating
// spectrometer configuration.
//
// Usage:
//
//	gratinfo [flags]
//
// Examples:
//
//	gratinfo
//	gratinfo -grooves 1200 -center 500
//	gratinfo -grooves 600 -focal 500 -pixels 2048 -axis
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/spectro/grating"
	"github.com/cwbudde/algo-spectro/spectro/units"
)

func main() {
	def := grating.DefaultConfig()

	grooves := flag.Float64("grooves", def.GrooveDensity, "grating groove density in grooves/mm")
	angle := flag.Float64("angle", def.IncidenceAngleDeg, "angle of incidence in degrees")
	focal := flag.Float64("focal", def.FocalLengthMm, "focal length in mm")
	pixel := flag.Float64("pixel", def.PixelSizeUm, "detector pixel pitch in µm")
	center := flag.Float64("center", def.CenterWavelengthNm, "center wavelength in nm")
	order := flag.Int("order", def.Order, "diffraction order")
	pixels := flag.Int("pixels", 1024, "number of detector pixels")
	axis := flag.Bool("axis", false, "print the full wavelength axis, one pixel per line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gratinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the wavelength coverage of a grating spectrometer.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := grating.Config{
		GrooveDensity:      *grooves,
		IncidenceAngleDeg:  *angle,
		FocalLengthMm:      *focal,
		PixelSizeUm:        *pixel,
		CenterWavelengthNm: *center,
		Order:              *order,
	}

	wl, err := cfg.WavelengthAxisN(*pixels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *axis {
		printAxis(wl)
		return
	}

	printSummary(cfg, wl)
}

func printAxis(wl []float64) {
	for i, v := range wl {
		fmt.Printf("%d\t%.5f\n", i, v)
	}
}

func printSummary(cfg grating.Config, wl []float64) {
	disp, err := cfg.Dispersion()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	first, last := wl[0], wl[len(wl)-1]

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Grooves [1/mm]\t%g\n", cfg.GrooveDensity)
	fmt.Fprintf(tw, "Incidence [deg]\t%g\n", cfg.IncidenceAngleDeg)
	fmt.Fprintf(tw, "Focal length [mm]\t%g\n", cfg.FocalLengthMm)
	fmt.Fprintf(tw, "Pixel pitch [µm]\t%g\n", cfg.PixelSizeUm)
	fmt.Fprintf(tw, "Order\t%d\n", cfg.Order)
	fmt.Fprintf(tw, "Center [nm]\t%.3f\n", cfg.CenterWavelengthNm)
	fmt.Fprintf(tw, "First pixel [nm]\t%.3f\n", first)
	fmt.Fprintf(tw, "Last pixel [nm]\t%.3f\n", last)
	fmt.Fprintf(tw, "Coverage [nm]\t%.3f\n", math.Abs(last-first))
	fmt.Fprintf(tw, "Dispersion [nm/mm]\t%.4f\n", disp)

	ev, err := units.NmToEV(cfg.CenterWavelengthNm)
	if err == nil {
		fmt.Fprintf(tw, "Center energy [eV]\t%.5f\n", ev)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}
