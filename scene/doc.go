// Retained mode 2D scene graph.
//
// Graphics (shapes, text) are kept in groups, top level groups are kept in layers, and layers are laid out in a canvas with edge attachments. Each layer maps its world coordinates to pixels with an affine transform (scale and translation).
//
// Groups are the unit of event handling. A layer routes pointer events to the front most group under the pointer (or to the group holding the mouse grab), and key events to the keyboard grab or the current group. Removing a group clears any role it held.
//
// Not safe for concurrent use: all calls must happen in the ui goroutine.
package scene
