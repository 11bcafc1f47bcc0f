// Package domain contains the core business entities, value objects, and
// domain logic of the task service: users, tasks, task statuses and the
// validation rules that apply to them. It is independent of any storage or
// delivery mechanism.
package domain
