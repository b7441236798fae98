// Package scaffold renders the extension boilerplate (module header, BSD
// license, setup.py) from embedded templates and materializes the project
// tree on disk. Directory collisions are detected before anything is
// written; after that, files are written in a fixed order and the first I/O
// error halts the run, leaving whatever was already written in place.
package scaffold
