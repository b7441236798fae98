// Package cli defines the make-flaskext command. The root command is the
// wizard itself: it asks for the extension metadata, builds a project.Spec,
// writes the boilerplate through the scaffold package and hands the result to
// the tools package for sphinx and VCS setup. Business logic lives in those
// packages; this one only sequences them and talks to the user.
package cli
