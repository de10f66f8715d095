// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the database connection and schema migration.

# Connecting

Connect opens a gorm handle against PostgreSQL and pings it, retrying
while the database comes up:

	gdb, err := db.Connect(cfg.DatabaseURL)

The handle is passed explicitly to every component; there are no
package-level singletons.

# Migration

Migrate auto-migrates all entities. Safe to call multiple times:

	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

# Tables

  - users: accounts, unique email
  - topics, questions: content with denormalized likes_count
  - events: content plus date and location
  - replies: content attached to one of topic/question
  - likes: (user, target) join rows, unique per pair
  - saveds: save join rows, no counter

# Relationships

	user 1──* topic / question / event / reply (RESTRICT on delete)
	topic 1──* reply, question 1──* reply
	like *──1 user, *──1 target (exactly one target column set)

The likes_count columns are kept in sync by application logic, not by the
database.
*/
package db
