// Command fat12cat extracts a file from a FAT12 image's root directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"

	"github.com/blockimg/fat12"
)

type rootParameters struct {
	ImageFilepath  string `short:"f" long:"image-filepath" description:"File-path of the FAT12 image" required:"true"`
	Name           string `short:"n" long:"name" description:"8.3 name of the file to extract" required:"true"`
	OutputFilepath string `short:"o" long:"output-filepath" description:"File-path to write to ('-' for STDOUT)" required:"true"`
}

var rootArguments = new(rootParameters)

func main() {
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state.(error))
			log.PrintError(err)
			os.Exit(-1)
		}
	}()

	p := flags.NewParser(rootArguments, flags.Default)
	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}

	dev, err := fat12.Open(rootArguments.ImageFilepath)
	log.PanicIf(err)
	defer dev.Close()

	vol, err := fat12.Mount(dev)
	log.PanicIf(err)
	defer vol.Close()

	f, err := vol.OpenFile(rootArguments.Name)
	log.PanicIf(err)
	defer f.Close()

	var out *os.File
	if rootArguments.OutputFilepath == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(rootArguments.OutputFilepath)
		log.PanicIf(err)
		defer out.Close()
	}

	n, err := io.Copy(out, f)
	log.PanicIf(err)

	if rootArguments.OutputFilepath != "-" {
		fmt.Printf("(%d) bytes written.\n", n)
	}
}
