package entity

import "github.com/opd-ai/go-pinball/pkg/physics"

// HandlePolygonCollision runs SAT between obstacle and the ball's square
// proxy and bounces the ball on contact.
func HandlePolygonCollision(obstacle *physics.Polygon, ball *Ball) bool {
	ball.UpdateCollisionPolygon()

	mtv := physics.SAT(ball.Polygon(), obstacle)
	if !mtv.Collides() {
		return false
	}

	ball.Bounce(mtv, obstacle)
	return true
}
