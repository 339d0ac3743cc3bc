package blogRepository

const (
	queryCreatePost = `
		INSERT INTO blog_posts (
			id,
			title,
			subtitle,
			date,
			body,
			img_url,
			author_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:subtitle,
			:date,
			:body,
			:img_url,
			:author_id,
			:created_at,
			:updated_at
		)
	`

	queryGetPostByID = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.author_id,
			p.created_at,
			p.updated_at,
			u.name AS author_name
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = :id
	`

	queryGetAllPosts = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.author_id,
			p.created_at,
			p.updated_at,
			u.name AS author_name
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`

	queryUpdatePost = `
		UPDATE blog_posts
		SET
			title = :title,
			subtitle = :subtitle,
			body = :body,
			img_url = :img_url,
			author_id = :author_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeletePost = `
		DELETE FROM blog_posts
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO comments (
			id,
			text,
			post_id,
			user_id,
			created_at
		) VALUES (
			:id,
			:text,
			:post_id,
			:user_id,
			:created_at
		)
	`

	queryGetCommentsByPostID = `
		SELECT
			c.id,
			c.text,
			c.post_id,
			c.user_id,
			c.created_at,
			u.name AS author_name,
			u.email AS author_email
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = :post_id
		ORDER BY c.created_at ASC
	`

	queryDeleteCommentsByPostID = `
		DELETE FROM comments
		WHERE post_id = :post_id
	`
)
