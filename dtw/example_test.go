package dtw_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/indexvec/dtw"
	"github.com/katalvlaran/indexvec/vec"
)

// ExampleDTW aligns a reference gait cycle with a slower query recording.
func ExampleDTW() {
	ref := vec.From[RefIdx, float64](0, 2, 4, 2, 0)
	query := vec.From[QueryIdx, float64](0, 1, 2, 4, 4, 2, 0)

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	dist, path, err := dtw.DTW(ref.Slice, query.Slice, &opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("distance:", dist)
	pairs := make([]string, len(path))
	for i, c := range path {
		pairs[i] = fmt.Sprintf("ref[%v]~query[%v]", c.I, c.J)
	}
	fmt.Println(strings.Join(pairs, " "))
	// Output:
	// distance: 1
	// ref[0]~query[0] ref[0]~query[1] ref[1]~query[2] ref[2]~query[3] ref[2]~query[4] ref[3]~query[5] ref[4]~query[6]
}
