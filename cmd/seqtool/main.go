// Copyright 2026 numseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command seqtool applies seq.Sequence operations to numbers given on the
// command line.
//
// Usage:
//
//	seqtool sort --type int32 5 3 8 1 9 2           # 1 2 3 5 8 9
//	seqtool add --type uint8 --scalar 10 250 1      # 4 11
//	seqtool sub --type int64 --with 10,20,30 1,2,3  # -9 -18 -27
//	seqtool div --type float64 --scalar 0 4 0 8     # 4 0 8
//	seqtool kinds                                   # allowed --type values
//
// Values may be separated by spaces or commas. Put negative values after
// "--" so they are not read as flags:
//
//	seqtool sort --type int8 -- -3 7 -1
//
// Logging goes to stderr; --log-env (default from NUMSEQ_LOG_ENV) picks the
// dev or prod configuration and --verbose enables debug output.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
