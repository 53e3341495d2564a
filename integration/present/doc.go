// Package present integrates pixelzero with gpucontext-based host
// frameworks.
//
// A Surface owns the screen-size composition of a renderer's virtual frame
// and manages the CPU-to-GPU upload: compose with letterboxing, upload the
// pixels as a texture through the host's TextureCreator, and draw it with
// the host's TextureDrawer.
package present
