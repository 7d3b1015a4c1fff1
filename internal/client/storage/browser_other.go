//go:build !(js && wasm)

package storage

func openBrowser() (*Backend, error) {
	return nil, ErrBackendUnavailable
}
