// Package wgpu presents the virtual frame on the GPU using WebGPU.
//
// The package carries the shader-side rendition of the pipeline: WGSL
// sources for the letterbox composite pass and the sprite/line transform
// passes, compiled to SPIR-V with gogpu/naga and loaded through the wgpu
// HAL. The device and queue are injected by the host application; this
// package never creates its own.
//
// GPU dispatch of the composite pass requires buffer binding support that
// the HAL is still growing; until then Present falls back to the CPU
// compositor, which computes the identical per-pixel result.
package wgpu
