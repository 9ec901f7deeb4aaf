package build

import (
	"context"

	"github.com/outofforest/build/v2/pkg/types"
	"github.com/outofforest/ocbuild"
)

// Commands is a definition of commands available in build system.
var Commands = map[string]types.Command{
	"build": {Fn: buildOCBuild, Description: "Builds ocbuild binary"},
	"efi": {Fn: func(ctx context.Context, deps types.DepsFunc) error {
		return ocbuild.Build(ctx, config)
	}, Description: "Builds example OpenCore tree"},
	"plist": {Fn: func(ctx context.Context, deps types.DepsFunc) error {
		_, err := ocbuild.WriteConfig(ctx, config)
		return err
	}, Description: "Generates config.plist of the example tree"},
}
