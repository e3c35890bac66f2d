// Package menu implements the interactive menu.
//
// A Session starts at MenuRoot, asks for one root selection and runs the
// matching flow to completion. It never loops back to the root menu. Any
// prompt or collaborator error aborts the session and is returned to the
// caller, which reports it with ErrorMessage.
package menu
