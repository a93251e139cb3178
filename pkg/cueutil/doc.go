// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the 3-step CUE parsing pattern used by the config
// and source packages:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// User data may be native CUE (tool configuration) or YAML (inventory source
// files); ParseYAML extracts YAML into a CUE value first and then follows the
// same unify/validate/decode flow.
//
// # Usage
//
//	//go:embed source_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseYAML[Options](
//	    schemaBytes,
//	    sourceBytes,
//	    "#Source",
//	    cueutil.WithFilename("vagrant.yml"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//	return result.Value, nil
package cueutil
