package main

import (
	"testing"

	_ "github.com/silkroad-freight/freightboard/testing"
)

func TestMainSkipsStartupInTestMode(t *testing.T) {
	main()
}
