// Diagnostic tool for inspecting NIfTI-1 volumes
package main

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-nifti/nifti"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: niftidump <file.nii[.gz]|file.hdr[.gz]>")
		os.Exit(1)
	}

	filename := os.Args[1]
	fmt.Printf("=== %s ===\n\n", filename)

	v, err := nifti.Open(filename)
	if err != nil {
		fmt.Printf("ERROR: Failed to open volume: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dimensions:  %v\n", v.Dims())
	fmt.Printf("Spacing:     %v\n", v.PixDims())
	fmt.Printf("Sample type: %s\n", v.DataType())
	fmt.Printf("Voxels:      %d\n", v.NumVoxels())
	if v.Slope() != 0 {
		fmt.Printf("Rescale:     x*%g + %g (applied)\n", v.Slope(), v.Intercept())
	} else {
		fmt.Println("Rescale:     none")
	}
	if d := v.Description(); d != "" {
		fmt.Printf("Description: %s\n", d)
	}

	if n := v.NumVoxels(); n > 0 {
		data := v.ReadFloat64()
		min, max := data[0], data[0]
		for _, x := range data[1:] {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
		fmt.Printf("Value range: [%g, %g]\n", min, max)
	}
}
