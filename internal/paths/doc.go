// Package paths provides cross-platform path resolution for gdvm's on-disk
// stores.
//
// gdvm keeps two base directories, both resolved through the XDG Base
// Directory Specification via github.com/adrg/xdg:
//
//	| Store | Linux               | Purpose                        |
//	|-------|---------------------|--------------------------------|
//	| data  | ~/.local/share/gdvm | extracted engine installations |
//	| cache | ~/.cache/gdvm       | downloaded release archives    |
//
// Both may be overridden through configuration; these helpers only supply
// the defaults. Layout of the engines/<version>/ subtrees inside the stores
// is owned by the store package.
package paths
