// Package peers checks peer dependency requirements before a package is
// linked. For every package a consumer links against, each declared peer must
// be satisfiable by the consumer's own declared versions. Unmet peers with no
// declared version become extra installs; declared versions that fail the
// range are fatal under the strict policy and reinstalls under the lenient one.
package peers
