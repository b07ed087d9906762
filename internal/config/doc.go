// Package config manages user-level settings stored at ~/.crosslink/config.yaml.
// Values may also come from CROSSLINK_* environment variables. Resolve folds
// the file, the environment and built-in defaults into one Settings value per
// invocation.
package config
