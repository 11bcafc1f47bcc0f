// Package tasks implements the task engine: creating, reading, listing,
// updating and deleting tasks on behalf of an authenticated owner.
//
// Every operation takes the owner's id and never touches another user's
// tasks; a task owned by someone else is indistinguishable from one that
// does not exist.
package tasks
