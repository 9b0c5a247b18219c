// Package config loads actdeck configuration with koanf.
//
// Layers are applied in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: an explicit path, or
//     $XDG_CONFIG_HOME/actdeck/config.toml when present
//  3. environment variables: ACTDECK_<SECTION>_<KEY>, for example
//     ACTDECK_CONSOLE_SORT=registration or ACTDECK_ACTIONS_FILES=a.toml,b.yaml
package config
