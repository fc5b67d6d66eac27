// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	stderrors "errors"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.CodeOf(err) {
	case errors.ErrCodeInvalidRequest:
		return ExitUsage
	default:
		return ExitFailure
	}
}

// errorLine renders err for stderr. A missing device is reported by its
// bare message.
func errorLine(err error) string {
	var se *errors.StructuredError
	if stderrors.As(err, &se) && se.Code == errors.ErrCodeNotFound {
		return se.Message
	}
	return err.Error()
}
