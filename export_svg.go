//  Copyright (c) 2019 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wnfa

import (
	"io"
	"os"
	"os/exec"
)

// ExportTraceSVGFile will invoke ExportTraceSVG and send the output to
// a new file at the provided path.
func ExportTraceSVGFile[S comparable, A comparable, W any](d *Determinizer[S, A, W],
	input []A, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return ExportTraceSVG(d, input, file)
}

// ExportTraceSVG will render the determinized exploration of the given
// input as SVG, streamed to the provided writer.  It requires the dot
// binary on the PATH.
func ExportTraceSVG[S comparable, A comparable, W any](d *Determinizer[S, A, W],
	input []A, w io.Writer) error {
	pr, pw := io.Pipe()
	go func() {
		defer func() {
			_ = pw.Close()
		}()
		_ = ExportTraceDot(d, input, pw)
	}()
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = pr
	cmd.Stdout = w
	cmd.Stderr = io.Discard
	err := cmd.Run()
	if err != nil {
		return err
	}
	return nil
}
