// Command fat12ls lists the root-directory contents of a FAT12 image.
package main

import (
	"fmt"
	"os"

	"github.com/dsoprea/go-logging"
	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"

	"github.com/blockimg/fat12"
)

type rootParameters struct {
	ImageFilepath string `short:"f" long:"image-filepath" description:"File-path of the FAT12 image" required:"true"`
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

	dir, err := vol.OpenRootDir("\\")
	log.PanicIf(err)
	defer dir.Close()

	err = dir.ForEach(func(e fat12.DirEntry) error {
		kind := "-"
		if e.Attrs.Directory {
			kind = "d"
		}
		fmt.Printf("%s %12s  %04d-%02d-%02d  %s\n",
			kind, humanize.Comma(int64(e.Size)),
			e.CreatedDate.Year, e.CreatedDate.Month, e.CreatedDate.Day,
			e.Name)
		return nil
	})
	log.PanicIf(err)
}
