// SPDX-License-Identifier: EPL-2.0

package afgtfw_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/afgtfw"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/ik5/afgtfw/internal/audiotest"
	"github.com/ik5/afgtfw/utils"
)

// Example_demoShape builds the windowed sine burst and stores it as TFW.
func Example_demoShape() {
	codes, err := utils.Normalize(afgtfw.DemoShape(1200, 32))
	if err != nil {
		fmt.Printf("normalize error: %v\n", err)
		return
	}

	var buf bytes.Buffer
	if err := tfw.Write(&buf, codes); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	fmt.Printf("Samples: %d\n", len(codes))
	fmt.Printf("File size: %d bytes\n", buf.Len())
	// Output:
	// Samples: 1200
	// File size: 2912 bytes
}

// Example_import resamples a recording to a fixed number of points.
func Example_import() {
	src := audiotest.NewRampSource(8000, 100)

	codes, err := afgtfw.Import(src, 3)
	if err != nil {
		fmt.Printf("import error: %v\n", err)
		return
	}

	fmt.Println(codes)
	// Output: [0 8191 16382]
}
