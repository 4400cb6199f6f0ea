// Package rules provides the built-in lint rules for goxmllint.
//
// # Rules
//
//   - XML001: xml-indent - Nested elements should be indented one level
//     deeper than their parent. Options: indent_size, indent_style.
//
// # Rule Packs
//
// Packs are configuration presets for common indentation conventions
// (see Packs). goxmllint init --pack writes one into a new config file.
//
// # Registration
//
// Rules are registered with lint.DefaultRegistry during init.
package rules
