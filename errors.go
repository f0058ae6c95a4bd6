package colorscript

import "errors"

var (
	// ErrImageNotFound is returned when a requested name is not among the scanned candidates
	ErrImageNotFound = errors.New("image not found")
	// ErrNoCandidateImages is returned when the images directory is missing or holds no usable files
	ErrNoCandidateImages = errors.New("no candidate images")
	// ErrDecodeFailed is returned when an image file cannot be decoded
	ErrDecodeFailed = errors.New("failed to decode image")
	// ErrNoNames is returned when a random pick is requested from an empty name list
	ErrNoNames = errors.New("no image names given")
)
