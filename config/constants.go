package config

const (
	// DEFAULT_RADIUS is the curvature radius used for hyperbolic disk models
	// when the configuration does not set one.
	DEFAULT_RADIUS = 100.0

	// JACOBIAN_STEP is the central-difference step used when chaining
	// colour-space Jacobians through XYZ.
	JACOBIAN_STEP = 1e-6

	// BATCH_CHUNK is the number of sample points handed to each worker when a
	// whole-batch transform is split across goroutines.
	BATCH_CHUNK = 1_024
)
