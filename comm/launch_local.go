//go:build !mpi

package comm

// Backend names the communicator implementation Launch uses.
const Backend = "local"

// Launch runs fn on size participants and returns the first error.
// Without the mpi build tag every participant is a goroutine of this process.
func Launch(size int, fn func(Comm) error) error {
	return RunLocal(size, fn)
}
