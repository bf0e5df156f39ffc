// Copyright 2025 Anthony Schladetsch
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package flow provides a single-threaded, cooperative scheduler for
// composable flow objects: coroutines, sequences, barriers, triggers,
// futures, and timers.
//
// # Architecture
//
// A [Kernel] owns a root [Node] and a time model. Applications call
// [Kernel.Update] once per game-loop/simulation tick; the kernel advances its
// clock and steps the root, which steps each of its active children in
// insertion order. Every flow object embeds [Transient] (a single-shot
// active→inactive lifecycle with a fire-once completion signal) and, if it is
// steppable, [Generator] (adds a running/suspended flag and a step counter;
// value-producing types such as [Future] and [Coroutine] expose their own
// Value accessor).
//
// Composite generators build on Generator to express dependency structure:
//
//   - [Sequence] steps one child at a time, in order.
//   - [Barrier] completes when every member has completed.
//   - [Trigger] completes when the first member completes.
//   - [Future] completes when a value is assigned to it.
//   - [Timer] and [Periodic] are wall-clock driven, using the kernel's own
//     accumulated time rather than any direct clock access.
//   - [Coroutine] and [Subroutine] adapt a user-supplied function (or lazy
//     step sequence) into a schedulable generator, including a suspension
//     protocol for yielding on another transient's completion.
//
// # Concurrency
//
// Flow is cooperative and single-threaded: there is no preemption and no
// thread-safety on flow objects. Every operation on a transient owned by a
// [Kernel] must be invoked from the same goroutine that calls
// [Kernel.Update] or [Kernel.Step].
//
// # Usage
//
//	k := flow.NewKernel()
//	f := k.Factory()
//
//	timer := f.NewTimer(2*time.Second, "")
//	timer.Then(func() { fmt.Println("fired") })
//	k.Root().Add(timer)
//
//	for {
//	    k.Update(frameDelta)
//	}
//
// # Error Handling
//
// There is no exception channel out of [Generator.Step]. Faults in user
// coroutine bodies and in completion handlers are caught, reported to the
// configured [Logger], and never propagate past the flow object that raised
// them — see the package-level error variables for the sentinel conditions
// the kernel itself can report.
package flow
