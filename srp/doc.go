// Package srp groups the single responsibility examples.
//
//   - bad: a journal that also saves and loads itself, and a user controller that writes files,
//     serializes and talks to a database
//   - good: a Journal that only manages entries, a generic Persistence that only writes files,
//     and the user controller split into serializer, file writer and repository
//   - task: a page navigation controller with too many jobs, left for the reader to refactor
package srp
