// Package scene reconstructs the GameObject hierarchy of a Unity scene file
// and renders it as an indented tree.
//
// # Overview
//
// A .unity file is a stream of YAML documents separated by "--- !u!" tags.
// Two kinds of document matter here:
//
//   - GameObject records ("1 &<id>") carry the display name and the active
//     flag of a scene object.
//
//   - Transform records ("4 &<id>") carry the hierarchy: the GameObject they
//     position, their parent Transform and their ordered child Transforms.
//
// Parent/child links live on the Transform layer, so the two tables are
// correlated by reference before a tree can be built.
//
// # Usage
//
//	h := scene.Parse(content)
//	r := scene.NewRenderer(scene.DefaultGlyphs)
//	for _, root := range h.Forest() {
//		for _, line := range r.Render(root) {
//			fmt.Println(line)
//		}
//		fmt.Println()
//	}
//
// # Architecture
//
//   - split.go: document splitting on the "--- !u!" separator
//   - extract.go: field extraction (line scanner and YAML decoder)
//   - resolve.go: object/transform correlation and root discovery
//   - tree.go: forest construction and traversal helpers
//   - render.go: box-drawing tree rendering
//   - parse.go: the end-to-end pipeline and statistics
package scene
