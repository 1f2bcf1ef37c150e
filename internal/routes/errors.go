package routes

import "errors"

var (
	ErrRouteNotFound   = errors.New("Route not found")
	ErrBaselineNotFound = errors.New("Baseline not found for route. Please set this route as baseline first.")
	ErrNoBaselineRoute  = errors.New("No baseline route found. Please set a baseline route first.")
)
