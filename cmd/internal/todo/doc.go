// Package todo implements the per-user todo list that sits behind the
// session gate. Every operation is scoped to the authenticated owner.
package todo
