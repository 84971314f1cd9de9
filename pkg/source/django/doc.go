// Package django loads Django migration files as [migration.Record] values.
//
// # Layout
//
// A Django app keeps its migrations as Python modules in a "migrations"
// package:
//
//	blog/
//	    migrations/
//	        __init__.py
//	        0001_initial.py
//	        0002_post_slug.py
//
// [Discover] finds apps below a project root by globbing for
// "**/migrations/*.py". The app label is the name of the directory holding
// the migrations package. [Loader.Load] turns every module of an app into a
// record named after its file stem.
//
// # Parsing
//
// Migration modules are parsed with tree-sitter, never executed. Only the
// "dependencies" and "replaces" attributes of the top-level Migration class
// are read, and only entries written as a literal two-string tuple
// ("app", "name") become ids. Anything else, such as
// migrations.swappable_dependency(settings.AUTH_USER_MODEL), is skipped.
//
// [DependencyRegion] reports the byte range of the dependencies value so
// callers can confine text rewrites to it.
package django
