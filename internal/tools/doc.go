// Package tools runs the external programs a new extension needs: git or hg
// to create the repository, and sphinx-quickstart to create the docs tree.
// The programs are opaque collaborators invoked by name. Their failures are
// collected as warnings instead of aborting the wizard, since the generated
// files are already on disk by the time they run.
package tools
