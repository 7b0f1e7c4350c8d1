// Package poseek exposes toolkit-wide metadata.
package poseek

// Version is the poseek toolkit version.
const Version = "v0.1.0"
