package dto

// ReadFailurePolicy decides what list, get and delete do when the store fails.
type ReadFailurePolicy string

const (
	// ReadFailureSwallow logs the failure and returns the empty result
	// (no users, nil, false). Callers cannot tell it apart from "nothing found".
	ReadFailureSwallow ReadFailurePolicy = "swallow"
	// ReadFailurePropagate returns the store error like the write paths do.
	ReadFailurePropagate ReadFailurePolicy = "propagate"
)
