// Package types defines the keypoint schema, per-image annotation store,
// session, and standard errors for the poseek annotation toolkit.
package types
