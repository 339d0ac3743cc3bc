package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			name,
			email,
			password,
			is_admin,
			created_at
		) VALUES (
			:id,
			:name,
			:email,
			:password,
			:is_admin,
			:created_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			name,
			email,
			password,
			is_admin,
			created_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			name,
			email,
			password,
			is_admin,
			created_at
		FROM users
		WHERE email = :email
	`

	queryCountUsers = `
		SELECT COUNT(*)
		FROM users
	`
)
