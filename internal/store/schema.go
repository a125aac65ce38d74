package store

// migrate creates the schema. Curriculum tables (courses through resources)
// are provisioned by external tooling in production; CREATE IF NOT EXISTS
// keeps a fresh database usable and is a no-op against an existing one.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS units (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id INTEGER NOT NULL,
		unit_number INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		FOREIGN KEY (course_id) REFERENCES courses(id)
	);

	CREATE TABLE IF NOT EXISTS lessons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		unit_id INTEGER NOT NULL,
		lesson_number INTEGER NOT NULL,
		title TEXT NOT NULL,
		grammar_focus TEXT,
		vocabulary_focus TEXT,
		context TEXT,
		FOREIGN KEY (unit_id) REFERENCES units(id)
	);

	CREATE TABLE IF NOT EXISTS blocks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lesson_id INTEGER NOT NULL,
		block_number INTEGER NOT NULL,
		title TEXT NOT NULL,
		activity_type TEXT,
		description TEXT,
		content TEXT,
		FOREIGN KEY (lesson_id) REFERENCES lessons(id)
	);

	CREATE TABLE IF NOT EXISTS grammar_rules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lesson_id INTEGER NOT NULL,
		rule TEXT NOT NULL,
		example TEXT,
		FOREIGN KEY (lesson_id) REFERENCES lessons(id)
	);

	CREATE TABLE IF NOT EXISTS vocabulary (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lesson_id INTEGER NOT NULL,
		word_or_phrase TEXT NOT NULL,
		definition TEXT,
		example_usage TEXT,
		FOREIGN KEY (lesson_id) REFERENCES lessons(id)
	);

	CREATE TABLE IF NOT EXISTS resources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lesson_id INTEGER NOT NULL,
		resource_type TEXT NOT NULL,
		description TEXT,
		url_or_path TEXT NOT NULL,
		FOREIGN KEY (lesson_id) REFERENCES lessons(id)
	);

	CREATE TABLE IF NOT EXISTS enrolled_students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		course_id INTEGER NOT NULL,
		FOREIGN KEY (course_id) REFERENCES courses(id)
	);

	CREATE TABLE IF NOT EXISTS lesson_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL,
		lesson_id INTEGER NOT NULL,
		completion_date TEXT,
		score INTEGER,
		feedback TEXT,
		FOREIGN KEY (student_id) REFERENCES enrolled_students(id),
		FOREIGN KEY (lesson_id) REFERENCES lessons(id),
		UNIQUE (student_id, lesson_id)
	);

	CREATE TABLE IF NOT EXISTS block_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lesson_record_id INTEGER NOT NULL,
		block_id INTEGER NOT NULL,
		student_speech_notes TEXT,
		teacher_notes TEXT,
		student_questions TEXT,
		created_at DATETIME NOT NULL,
		modified_at DATETIME,
		FOREIGN KEY (lesson_record_id) REFERENCES lesson_records(id),
		FOREIGN KEY (block_id) REFERENCES blocks(id),
		UNIQUE (lesson_record_id, block_id)
	);

	CREATE TABLE IF NOT EXISTS llm_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}
