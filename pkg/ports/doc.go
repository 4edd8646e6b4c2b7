/*
Package ports defines the driven ports (interfaces) through which a dashboard
reads its widget definitions.

# Key Interfaces

  - Source: Loads the dashboard name and its widget definitions (file, Loam directory, Redis, memory).
  - Watchable: Optionally reports changes so the dashboard can reload.

The tests subpackage holds a contract suite every Source implementation runs.
*/
package ports
