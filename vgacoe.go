/*
Package vgacoe is a library for turning images and animations into Xilinx
COE files that initialize the block RAM frame buffers of an FPGA VGA
display.
*/
package vgacoe

import (
	"io/ioutil"
	"log"
)

// Converter converts images into COE files using a fixed configuration
type Converter struct {
	cfg     Config
	catalog *Catalog
	logger  *log.Logger
}

// New returns a Converter for cfg. The catalog is optional and only used by
// Batch; if logger is nil nothing is logged.
func New(cfg Config, catalog *Catalog, logger *log.Logger) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	return &Converter{
		cfg:     cfg,
		catalog: catalog,
		logger:  logger,
	}, nil
}
