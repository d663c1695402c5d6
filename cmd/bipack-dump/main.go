// Copyright (C) 2026 Sergey S. Chernov.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// bipack-dump prints a human-readable hex dump of a file, or of stdin when
// no file is given.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sergeych/bipack-go/dump"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var offset, limit int64

	cmd := &cobra.Command{
		Use:   "bipack-dump [file]",
		Short: "Hex-dump a file or stdin",
		Long: `Print a hex dump with offset, hex and printable-ASCII columns:

  0000 02 48 69 ac 02 01 00 00 00 00 00 00 00          |.Hi..........   |

Reads the named file, or stdin when no file is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				in = f
			}
			if offset > 0 {
				if _, err := io.CopyN(io.Discard, in, offset); err != nil && err != io.EOF {
					return errors.Wrap(err, "skip offset")
				}
			}
			if limit >= 0 {
				in = io.LimitReader(in, limit)
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return errors.Wrap(err, "read input")
			}
			_, err = io.WriteString(cmd.OutOrStdout(), dump.Dump(data))
			return err
		},
	}

	cmd.Flags().Int64VarP(&offset, "offset", "o", 0, "skip this many leading bytes")
	cmd.Flags().Int64VarP(&limit, "limit", "n", -1, "dump at most this many bytes (-1 for all)")

	return cmd
}
