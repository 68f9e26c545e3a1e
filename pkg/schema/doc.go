// Package schema describes the database objects that nodeseed bootstraps.
//
// A Definition names one database and the tables that must exist inside it.
// Columns are described with portable kinds (Integer, String, Date, Timestamp)
// so that each database dialect can render native DDL for them. The package is
// pure data: it never talks to a database and nothing in it is mutated at
// runtime.
//
// The only table generated projects rely on is Submissions:
//
//	submissions(
//	  id         integer primary key auto-increment,
//	  name       varchar(255) not null,
//	  dob        date not null,
//	  date_from  date null,
//	  date_to    date null,
//	  created_at timestamp default current_timestamp
//	)
//
// There is no migration logic. Re-running a bootstrap never alters an existing
// table; it only creates what is missing.
package schema
