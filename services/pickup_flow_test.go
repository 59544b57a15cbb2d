package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndAssign_RequiresAcceptedDonation(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	d := e.createDonation(t, donor, ngo)

	// ยัง Requested อยู่ — ห้ามจ่ายงาน
	_, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)

	assert.Equal(t, "Assigned", e.pickupStatusName(t, p.ID))
	assert.Equal(t, "Volunteer Assigned", e.donationStatusName(t, d.ID))
}

func TestCreateAndAssign_VolunteerMustBelongToNgo(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	otherOwner := e.createUser(t, "other@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	otherNgo := e.createNgo(t, otherOwner, true)
	outsider := e.createVolunteer(t, volUser, otherNgo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	_, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: outsider.ID})
	assert.ErrorIs(t, err, ErrForbidden)
	// ห้ามมี side effect ค้าง
	assert.Equal(t, "Accepted", e.donationStatusName(t, d.ID))
}

func TestAdvance_OneForwardStepNoSkipping(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)

	got, err := e.pickups.Advance(volUser.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "En route", got)
	// En route ไม่สะท้อนเข้า donation — donation ขยับอีกทีตอน Picked Up
	assert.Equal(t, "Volunteer Assigned", e.donationStatusName(t, d.ID))

	got, err = e.pickups.Advance(volUser.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Picked Up", got)
	assert.Equal(t, "Picked Up", e.donationStatusName(t, d.ID))

	got, err = e.pickups.Advance(volUser.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", got)
	assert.Equal(t, "Delivered", e.donationStatusName(t, d.ID))

	// Delivered เป็น terminal
	_, err = e.pickups.Advance(volUser.ID, p.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvance_OnlyBoundVolunteer(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	otherVolUser := e.createUser(t, "vol2@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	e.createVolunteer(t, otherVolUser, ngo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)

	_, err = e.pickups.Advance(otherVolUser.ID, p.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// คนนอกที่ไม่ได้เป็น volunteer เลยก็โดนเหมือนกัน
	_, err = e.pickups.Advance(donor.ID, p.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdvance_PickedUpMirrorBlockedRollsBack(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)
	_, err = e.pickups.Advance(volUser.ID, p.ID) // → En route
	require.NoError(t, err)

	// บิด donation แม่ให้หลุดจาก Volunteer Assigned ข้างหลัง
	var cancelled entity.DonationStatus
	require.NoError(t, e.db.Where("status_name = ?", "Cancelled").First(&cancelled).Error)
	require.NoError(t, e.db.Model(&entity.Donation{}).Where("id = ?", d.ID).
		Update("donation_status_id", cancelled.ID).Error)

	// mirror เข้า donation ไม่สำเร็จ → ต้อง rollback pickup ด้วย ไม่ปล่อยให้เหลื่อมกัน
	_, err = e.pickups.Advance(volUser.ID, p.ID)
	assert.ErrorIs(t, err, ErrStaleState)
	assert.Equal(t, "En route", e.pickupStatusName(t, p.ID))
}

func TestCancelByVolunteer_BeforePickupOnly(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)

	require.NoError(t, e.pickups.CancelByVolunteer(volUser.ID, p.ID))
	assert.Equal(t, "Cancelled", e.pickupStatusName(t, p.ID))

	// ยกเลิกซ้ำไม่ได้
	assert.ErrorIs(t, e.pickups.CancelByVolunteer(volUser.ID, p.ID), ErrInvalidTransition)

	// donation คืนกลับ Accepted ให้ NGO จ่ายงานใหม่ได้
	assert.Equal(t, "Accepted", e.donationStatusName(t, d.ID))
}

func TestCancelByVolunteer_NotAfterGoodsPickedUp(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)

	// เดินไป En route แล้วต่อถึง Picked Up
	_, err = e.pickups.Advance(volUser.ID, p.ID)
	require.NoError(t, err)
	_, err = e.pickups.Advance(volUser.ID, p.ID)
	require.NoError(t, err)

	// ของอยู่ในมือ volunteer แล้ว ถอนตัวเองไม่ได้
	assert.ErrorIs(t, e.pickups.CancelByVolunteer(volUser.ID, p.ID), ErrInvalidTransition)
}

func TestReassignAfterVolunteerCancel(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	vol2User := e.createUser(t, "vol2@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)
	vol2 := e.createVolunteer(t, vol2User, ngo)
	d := e.createDonation(t, donor, ngo)

	require.NoError(t, e.donations.NgoAccept(owner.ID, d.ID))
	p1, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)
	require.NoError(t, e.pickups.CancelByVolunteer(volUser.ID, p1.ID))

	// จ่ายงานใหม่ ใช้แถว pickup เดิม (donation_id unique)
	p2, err := e.pickups.CreateAndAssign(owner.ID, d.ID, &CreatePickupReq{VolunteerID: vol2.ID})
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
	require.NotNil(t, p2.VolunteerID)
	assert.Equal(t, vol2.ID, *p2.VolunteerID)
	assert.Equal(t, "Assigned", e.pickupStatusName(t, p2.ID))
	assert.Equal(t, "Volunteer Assigned", e.donationStatusName(t, d.ID))

	// คนใหม่เดินงานต่อได้จนจบ
	for i := 0; i < 3; i++ {
		_, err = e.pickups.Advance(vol2User.ID, p2.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, "Delivered", e.donationStatusName(t, d.ID))
}

func TestListForVolunteerUser(t *testing.T) {
	e := newTestEnv(t)
	donor := e.createUser(t, "donor@test.local", "donor")
	owner := e.createUser(t, "ngo@test.local", "ngo")
	volUser := e.createUser(t, "vol@test.local", "volunteer")
	ngo := e.createNgo(t, owner, true)
	vol := e.createVolunteer(t, volUser, ngo)

	d1 := e.createDonation(t, donor, ngo)
	require.NoError(t, e.donations.NgoAccept(owner.ID, d1.ID))
	_, err := e.pickups.CreateAndAssign(owner.ID, d1.ID, &CreatePickupReq{VolunteerID: vol.ID})
	require.NoError(t, err)

	items, err := e.pickups.ListForVolunteerUser(volUser.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = e.pickups.ListForVolunteerUser(donor.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
