//go:build !windows

package main

func tryAcquireSingleInstance(appID string) (primary bool, release func(), err error) {
	return true, func() {}, nil
}
