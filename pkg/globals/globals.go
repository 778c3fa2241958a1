// Copyright (c) 2024  The Go-Enjin Authors
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

package globals

import (
	"fmt"
)

var (
	// BinName is the name of the actual binary compiled
	BinName = "slickcodes"
	// Release is a revision indicator such as a short git commit id
	Release = ""
	// Version is the standard semantic versioning of this release
	Version = "0.1.0"
	// Summary is used on the command line and other cosmetic places
	Summary = "inline %%shortcode%% text transformations"
	// EnvPrefix is used as a prefix to all CLI environment variables
	EnvPrefix = "SLICKCODES"
)

// BuildVersion returns the Version string, suffixed with the Release
// indicator when present
func BuildVersion() (version string) {
	version = Version
	if Release != "" {
		version = fmt.Sprintf("%v (%v)", Version, Release)
	}
	return
}
